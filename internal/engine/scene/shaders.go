package scene

// Shader sources for the orbital scene. The vertex layout is the stride-11
// contract: position, color, texcoord, normal. The texcoord slot is part of
// the buffer layout but no geometry is textured, so the fragment shader
// shades with the per-vertex color alone.

const fieldVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;
layout (location = 2) in vec2 aTex;
layout (location = 3) in vec3 aNormal;

uniform mat4 uCamMatrix;

out vec3 vColor;
out vec3 vNormal;
out vec3 vWorldPos;

void main() {
	gl_Position = uCamMatrix * vec4(aPos, 1.0);
	vColor = aColor;
	vNormal = aNormal;
	vWorldPos = aPos;
}
`

const fieldFragmentShader = `
#version 410 core

in vec3 vColor;
in vec3 vNormal;
in vec3 vWorldPos;

uniform vec4 uLightColor;
uniform vec3 uLightPos;
uniform vec3 uCamPos;

out vec4 FragColor;

void main() {
	float ambient = 0.20;

	vec3 normal = normalize(vNormal);
	vec3 lightDir = normalize(uLightPos - vWorldPos);
	float diffuse = max(dot(normal, lightDir), 0.0);

	vec3 viewDir = normalize(uCamPos - vWorldPos);
	vec3 reflectDir = reflect(-lightDir, normal);
	float specular = 0.5 * pow(max(dot(viewDir, reflectDir), 0.0), 8.0);

	FragColor = vec4(vColor, 1.0) * uLightColor * (diffuse + ambient + specular);
}
`

const lampVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uCamMatrix;

void main() {
	gl_Position = uCamMatrix * vec4(aPos, 1.0);
}
`

const lampFragmentShader = `
#version 410 core

uniform vec4 uLightColor;

out vec4 FragColor;

void main() {
	FragColor = uLightColor;
}
`
